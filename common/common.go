package common

import "fmt"

// SliceToString pretty prints a slice of field elements to ease debugging
func SliceToString[E fmt.Stringer](slice []E) string {
	res := "["
	for _, x := range slice {
		res += fmt.Sprintf("%v, ", x.String())
	}
	res += "]"
	return res
}
