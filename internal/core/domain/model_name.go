package domain

import "errors"

var ErrUnknownModelName = errors.New("unknown model name")

// ModelName is the enum-constrained path parameter used by the demo routes.
type ModelName string

const (
	ModelOption1 ModelName = "1"
	ModelOption2 ModelName = "2"
	ModelOption3 ModelName = "3"
)

// ParseModelName validates a raw path value against the enum.
func ParseModelName(raw string) (ModelName, error) {
	switch ModelName(raw) {
	case ModelOption1, ModelOption2, ModelOption3:
		return ModelName(raw), nil
	}
	return "", ErrUnknownModelName
}

// Name returns the symbolic name of the enum member.
func (m ModelName) Name() string {
	switch m {
	case ModelOption1:
		return "OPTION1"
	case ModelOption2:
		return "OPTION2"
	case ModelOption3:
		return "OPTION3"
	}
	return ""
}
