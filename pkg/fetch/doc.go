/*
Package fetch performs the single HTTP round trip behind each web script and
extracts the one value the script prints.

Client wraps net/http with a whole-request deadline and tags every request
with an X-Request-Id. The extraction helpers (Title, CountCharacter,
CompletedByUser, SearchUser) work on raw bodies so they can be tested without
a network.
*/
package fetch
