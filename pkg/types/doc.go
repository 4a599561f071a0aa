/*
Package types defines the value types the supervisor configuration is built
from but does not own: the service topology, the update strategy and the
package identifier.

These are small closed types. Every enum has a usable zero value
(TopologyStandalone, UpdateStrategyNone), a strict Parse function for the
literals accepted on the command line, and text marshaling so that the same
literals appear in logs and in the effective-config dump.

# Topology

	standalone  the service runs on its own; no election
	leader      one member of the service group is elected leader

# Update Strategy

	none        never update the running package
	at-once     update as soon as the depot has a newer release
	rolling     update one group member at a time

# Package Identifiers

A PackageIdent is written origin/name[/version[/release]]:

	ident, err := types.ParsePackageIdent("core/redis/3.2.4")
	if err != nil {
		return err
	}
	fmt.Println(ident.Name, ident.FullyQualified()) // redis false

ParsePackageIdent checks structure only. Resolving a partial identifier to
a concrete release is the depot's job.
*/
package types
