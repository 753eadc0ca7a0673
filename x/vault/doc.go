/*
Package vault implements a custodial multi signature vault.

Principals deposit native funds or whitelisted tokens into vault
custody and the amounts are tracked in a per (principal, asset)
balance ledger. Funds only leave custody through a withdrawal request
that collects approvals from the authorized signer set: once a quorum
of current signers has signed and the time lock since the request was
opened has elapsed, any signer can execute the request and the funds
are pushed out through the ledger adapter.

A single administrator maintains the signer set, the destination
whitelist and the token whitelist, and can activate an emergency
freeze that halts every fund moving operation until unfrozen.
*/
package vault
