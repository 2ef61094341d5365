package argscan_test

import (
	"fmt"

	"github.com/ardnew/argscan"
)

func Example() {
	argv := []string{"prog", "--shots=3", "--fast", "--format", "json"}

	args := argscan.Make(argv)
	args.CheckUnknown("", "--shots", "--seed", "--fast", "--format")

	fmt.Println(args.Int("--shots", 1, 1, 1000))
	fmt.Println(args.Bool("--fast"))
	fmt.Println(args.Enum("--format", 0, "text", "json"))
	// Output:
	// 3
	// true
	// 1
}

func Example_defaults() {
	args := argscan.Make([]string{"prog"})

	fmt.Println(args.Int("--shots", 25, 1, 1000))
	fmt.Println(args.Float("--rate", 0.5, 0, 1))
	fmt.Println(args.Bool("--fast"))
	// Output:
	// 25
	// 0.5
	// false
}

func ExampleArgs_Find() {
	args := argscan.Make([]string{"prog", "--seed", "42", "--verbose", "--", "--ignored"})

	for _, name := range []string{"--seed", "--verbose", "--ignored"} {
		value, ok := args.Find(name)
		fmt.Printf("%s %q %v\n", name, value, ok)
	}
	// Output:
	// --seed "42" true
	// --verbose "" true
	// --ignored "" false
}

func ExampleArgs_Require() {
	args := argscan.Make([]string{"prog", "--out=results.txt"})

	fmt.Println(args.Require("--out"))
	// Output:
	// results.txt
}
