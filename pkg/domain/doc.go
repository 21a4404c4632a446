/*
Package domain contains the core domain models for the ash shell.

It defines the fundamental entities of a shell session, such as the
tokenized Invocation, the mutable Session state, and the uniform error
shape commands report failures with. This package is kept pure and free
of external dependencies like I/O or process management, following
Hexagonal Architecture principles.

# Key Entities

  - Invocation: A tokenized input line (command name plus arguments).
  - Session: The runtime snapshot of one shell session (working directory, history).
  - Status: The read loop verdict after a command has been handled.
  - CommandError: The uniform "command: target: reason" failure report.
*/
package domain
