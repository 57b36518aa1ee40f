package detector

// Detect exposes the injectable detection for tests.
var Detect = detect
