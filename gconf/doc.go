/*

Package gconf implements a configuration store intended to be used as a
global, in-database configuration.

Each extension keeps its configuration under a well known key, derived from
the package name. Configuration is loaded from the genesis file during chain
initialization and can later be updated by the configured owner using a patch
message.

*/
package gconf
