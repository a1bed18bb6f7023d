// Package manifest reads the pubspec.yaml package manifest.
package manifest
