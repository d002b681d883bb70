package searcher

// MaxDepth bounds the search of the computer opponent.
const MaxDepth = 8
