/*
Package streaming groups the byte stream packages.

  - stream: the capability interfaces (Stream, InputStream, OutputStream,
    IOStream) with in-memory, Redis and wrapper implementations

A stream moves bytes only. Framing, encoding and buffering policies belong
to the caller.
*/
package streaming
