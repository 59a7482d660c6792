package lazysorted_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/lazysorted"
)

// Example demonstrates median selection without a full sort.
func Example() {
	ls := lazysorted.New([]int{10, -2, 7, 7, 3})

	median, err := ls.At(ls.Len() / 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(median)
	// Output: 7
}

// ExampleList_Ascend demonstrates lazy ordered iteration.
func ExampleList_Ascend() {
	ls := lazysorted.New([]string{"pear", "apple", "cherry"})

	for v, err := range ls.Ascend() {
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(v)
	}
	// Output:
	// apple
	// cherry
	// pear
}

// ExampleKeys demonstrates building a List from map keys.
func ExampleKeys() {
	ls := lazysorted.Keys(map[string]int{"b": 1, "a": 2, "c": 3})

	sorted, err := ls.Sorted()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(sorted)
	// Output: [a b c]
}

// ExampleList_MinK demonstrates top-k selection.
func ExampleList_MinK() {
	ls := lazysorted.New([]int{9, 4, 6, 1, 8, 2, 7, 0, 5, 3})

	top3, err := ls.MinK(3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(top3)
	// Output: [0 1 2]
}

// ExampleNewFunc demonstrates a custom ordering.
func ExampleNewFunc() {
	words := []string{"kiwi", "fig", "banana"}

	byLength := lazysorted.NewFunc(words, func(a, b string) int {
		return len(a) - len(b)
	})

	shortest, err := byLength.At(0)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(shortest)
	// Output: fig
}

// ExampleList_Between demonstrates trimming outliers without sorting the
// middle of the data.
func ExampleList_Between() {
	ls := lazysorted.New([]int{99, 3, 1, 4, 1, 5, 9, 2, 6, -50})

	// Everything except the smallest and largest value, order unspecified.
	middle, err := ls.Between(1, 9)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(middle))
	// Output: 8
}
