// Package dhcp2ipam holds the project-wide constants.
package dhcp2ipam

// Version of the exporter.
const Version = "1.0.0"
