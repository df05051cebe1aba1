/*
Package x contains the standard extensions.

Extensions implement common functionality (Handler, Decorator,
etc.) and can be combined together to construct an application.
This package holds the pieces shared by all of them, most importantly
the Authenticator that reveals who is calling.
*/
package x
