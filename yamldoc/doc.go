// Package yamldoc loads and saves the YAML documents that cross
// AnnounceNet's process boundary: instance, solution, and announcements
// documents on the way in, bold/cautious result documents on the way out.
package yamldoc
