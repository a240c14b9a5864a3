package zint

import (
	"fmt"
	"testing"
)

func TestProduct(t *testing.T) {
	fmt.Println("TestProduct")
	if Product[int]() != 1 || Product(2, 3, 4) != 24 {
		t.Error("Product wrong")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp wrong")
	}
	n := 4
	if !Maximize(&n, 6) || n != 6 || Minimize(&n, 7) || n != 6 {
		t.Error("Maximize/Minimize wrong:", n)
	}
	if Abs(-3) != 3 {
		t.Error("Abs wrong")
	}
}
