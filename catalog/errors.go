package catalog

import "errors"

var (
	ErrNilParser        = errors.New("catalog: parser cannot be nil")
	ErrEmptyContent     = errors.New("catalog: content cannot be empty")
	ErrInvalidStructure = errors.New("catalog: content must map locales to key/template pairs")
	ErrEmptyLocale      = errors.New("catalog: locale code cannot be empty")
	ErrNilCatalog       = errors.New("catalog: catalog cannot be nil")
	ErrEmptyKey         = errors.New("catalog: message key cannot be empty")
)
