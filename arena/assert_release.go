//go:build !debug

package arena

func assertAlign(int) {}

func assertPointerFree[T any]() {}
