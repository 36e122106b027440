// Package domain holds the error taxonomy shared by every entity package.
// Entity types live in sub-packages (domain/access, domain/board,
// domain/ticket, domain/user). Nothing in this tree performs I/O.
package domain
