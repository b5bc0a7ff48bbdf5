package cli

// CheckSelectorsForTest exposes checkSelectors.
var CheckSelectorsForTest = checkSelectors
