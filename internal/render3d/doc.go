// Package render3d paints presented scene frames as cubes with raylib. It
// requires the raylib build tag.
package render3d
