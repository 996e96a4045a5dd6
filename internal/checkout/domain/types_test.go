package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionFormatting(t *testing.T) {
	sub := Submission{FirstName: "Ayu", LastName: "Lestari", Address: "Jl. Batu 1", City: "Bandung"}
	assert.Equal(t, "Ayu Lestari", sub.CustomerName())
	assert.Equal(t, "Jl. Batu 1, Bandung", sub.FullAddress())

	bare := Submission{FirstName: "Ayu", Address: "Jl. Batu 1"}
	assert.Equal(t, "Ayu", bare.CustomerName())
	assert.Equal(t, "Jl. Batu 1", bare.FullAddress())
}
