// Package utils provides small conversion helpers shared by the feature
// packages, mainly for normalizing loosely typed values arriving from
// external payloads and legacy database columns.
package utils
