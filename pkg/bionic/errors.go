package bionic

import "errors"

var (
	// ErrNoSelection is returned when a conversion is requested for no nodes.
	ErrNoSelection = errors.New("no text nodes selected")
	// ErrInvalidSettings is returned for out-of-range settings.
	ErrInvalidSettings = errors.New("invalid settings")
	// ErrInsufficientWeights means a family offers too few weights to create contrast.
	ErrInsufficientWeights = errors.New("font has fewer than 2 weights")
	// ErrFontLoad means the host refused to load a font.
	ErrFontLoad = errors.New("font failed to load")
	// ErrSampling means a style query at a sample point failed.
	ErrSampling = errors.New("style sampling failed")
	// ErrEmptyNode means the node holds no characters.
	ErrEmptyNode = errors.New("text node is empty")
	// ErrNoSuitableFonts means mixed-font discovery found no family that can be bolded.
	ErrNoSuitableFonts = errors.New("no suitable fonts found in text node")
)
