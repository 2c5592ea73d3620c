/*
Package cookie parses and generates HTTP cookies as defined
by RFC 6265, along with the draft SameSite, Partitioned,
and cookie-prefix extensions.

Parse and SplitParse read the cookie strings found in Set-Cookie and Cookie
headers; Cookie.String and Cookie.Encoded write them back. Parse fails only
when there is no usable name=value pair at all. Attributes never fail:
like the user agents this package has to agree with, it salvages what it can
and drops the rest. Do not assume that a parsed name or value conforms to
the grammar of RFC 6265; use Cookie.Valid to check that.

A Jar tracks cookies the way a server sees them over one request/response
cycle: cookies presented by the user agent go in with Jar.AddOriginal,
changes are made with Jar.Add and Jar.Remove, and Jar.Delta emits the exact
Set-Cookie values that carry those changes back. Jar.Signed and Jar.Private
wrap a jar so that cookie values are authenticated, or authenticated and
encrypted, in transit; Jar.Prefixed applies the "__Host-" and "__Secure-"
name prefixes.
*/
package cookie
