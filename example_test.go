package sharedlock_test

import (
	"errors"
	"fmt"

	"github.com/llxisdsh/sharedlock"
)

func ExampleSharedLock() {
	lock := sharedlock.New(map[string]int{})

	w, err := lock.Write()
	if err != nil {
		panic(err)
	}
	w.Value()["hits"]++

	// Re-entry from the goroutine that holds the write guard is reported,
	// not spun on.
	_, err = lock.Read()
	fmt.Println(errors.Is(err, sharedlock.ErrDeadlock))
	w.Release()

	r, err := lock.Read()
	if err != nil {
		panic(err)
	}
	defer r.Release()
	fmt.Println(r.Value()["hits"])
	// Output:
	// true
	// 1
}

func ExampleSharedLock_WithWrite() {
	var lock sharedlock.SharedLock[[]string]

	_ = lock.WithWrite(func(v *[]string) error {
		*v = append(*v, "a", "b")
		return nil
	})
	_ = lock.WithRead(func(v []string) error {
		fmt.Println(len(v))
		return nil
	})
	// Output: 2
}

func ExampleGroup() {
	var group sharedlock.Group[string]

	w, err := group.Write("user-123")
	if err != nil {
		panic(err)
	}
	_, err = group.Write("user-123")
	fmt.Println(err)
	w.Release()
	// Output: sharedlock: deadlock
}
