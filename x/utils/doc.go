/*
Package utils contains decorators shared by all extensions: logging,
panic recovery and savepoints.
*/
package utils
