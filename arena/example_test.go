package arena

import "fmt"

// Example demonstrates basic arena usage.
func Example() {
	a, err := NewArena(0)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	buf, _ := a.AllocBytes(1024)
	fmt.Printf("allocated buffer of size: %d\n", len(buf))

	p, _ := Make(a, 123)
	fmt.Printf("allocated int with value: %d\n", *p)

	s, _ := MakeSlice[int64](a, 5)
	for i := range s {
		s[i] = int64(i * 2)
	}
	fmt.Printf("allocated slice: %v\n", s)

	a.Reset()
	fmt.Printf("after reset, memory in use: %d bytes\n", a.SizeInUse())

	// Output:
	// allocated buffer of size: 1024
	// allocated int with value: 123
	// allocated slice: [0 2 4 6 8]
	// after reset, memory in use: 0 bytes
}

// ExampleArena_RollbackTo shows scoped reclamation with a checkpoint.
func ExampleArena_RollbackTo() {
	a, err := NewArena(0)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	m := a.Marker()
	scratch, _ := a.AllocBytes(4096)
	_ = scratch // temporary working space

	a.RollbackTo(m)
	fmt.Printf("memory in use after rollback: %d bytes\n", a.SizeInUse())

	// Output:
	// memory in use after rollback: 0 bytes
}

// ExampleVec shows a container drawing storage through the resource adaptor.
func ExampleVec() {
	a, err := NewArena(0)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	v := NewVec[int64](NewResource(a))
	for i := int64(1); i <= 3; i++ {
		if err := v.Push(i * 10); err != nil {
			panic(err)
		}
	}
	fmt.Println(v.Len(), v.At(0), v.At(2))

	x, _ := v.Pop()
	fmt.Println(x, v.Len())

	// Output:
	// 3 10 30
	// 30 2
}
