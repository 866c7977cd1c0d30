// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// The service layer depends on domain entities and repository interfaces (from store),
// but never on specific infrastructure implementations. Services receive their
// dependencies, including the *sql.DB storage handle, through constructor injection.
//
// Key components:
//
//   - CredentialService: registers accounts and verifies passwords against
//     stored bcrypt hashes. Registration outcomes are reported as a
//     RegisterResult so that a duplicate username is never confused with a
//     storage failure.
package service
