// Package modules contains the self-contained features of the site.
//
// Each subdirectory is a module implementing module.Module. Modules are
// listed in internal/app/modules.go and booted by the server at startup.
package modules
