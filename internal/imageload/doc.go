package imageload

// Package imageload contains the external-world glue for card bitmaps:
// HTTP fetch, decode to natural dimensions, and preview downscaling.
