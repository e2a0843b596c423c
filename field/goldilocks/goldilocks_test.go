package goldilocks

import (
	"testing"

	"github.com/consensys/eqdiff/field/fieldtest"
)

func TestFieldLaws(t *testing.T) {
	fieldtest.Laws[Element](t, Field{})
}

func TestFieldDescriptor(t *testing.T) {
	fieldtest.Descriptor[Element](t, Field{})
}
