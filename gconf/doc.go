/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object, stored under a key derived
from the extension name. Configuration is loaded from the "conf" section of the
genesis file.
*/
package gconf
