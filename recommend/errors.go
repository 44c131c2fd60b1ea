package recommend

import "errors"

var (
	// ErrNotFound means the requested food name is absent from the
	// dataset (under case-insensitive exact matching).
	ErrNotFound = errors.New("food not found in dataset")

	// ErrInsufficientData means the food's category group has no
	// similarity index or no diabetic-friendly members to compare
	// against.
	ErrInsufficientData = errors.New("not enough options for comparison")
)
