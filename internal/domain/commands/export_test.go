package commands

// Required exports required for testing.
var Required = required //nolint:gochecknoglobals // test export

// MinLength exports minLength for testing.
var MinLength = minLength //nolint:gochecknoglobals // test export

// AbsoluteURL exports absoluteURL for testing.
var AbsoluteURL = absoluteURL //nolint:gochecknoglobals // test export
