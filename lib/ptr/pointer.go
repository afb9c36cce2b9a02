package ptr

// Int returns a pointer to i, used for endpoint statuses.
func Int(i int) *int {
	return &i
}
