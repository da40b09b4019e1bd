// Package tailor provides the provider read model for the tailoring
// marketplace. Tailors are owned by the external account service; this core
// consumes them as a read model and keeps a projection for proximity search.
//
// Discovery only ever considers tailors that are Active and have shared a
// location; IsDiscoverable encodes that invariant in one place.
package tailor
