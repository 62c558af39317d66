// Package schema defines the request and response object shapes of the API,
// with validation.
//
//   - Types ending in "Create" validate request objects which are to be
//     added to the store.
//   - Types ending in "Update" validate request objects which modify
//     existing records. Every field is three-state optional (see Optional):
//     an absent field means "no change", an explicit null means "clear".
//   - Types without a suffix describe response objects. They are built from
//     persisted records by the XxxFromRecord projection functions, which
//     expect relations to be resolved already (the record carries the
//     related object, not just its id). A projection that finds a required
//     relation missing returns an errs.IntegrityError rather than
//     defaulting the value.
//
// The package does no querying and holds no state; every validation and
// projection call is independent and safe to run concurrently.
package schema
