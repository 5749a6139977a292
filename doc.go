/*

Package vault defines the interfaces used throughout the application:
storage, transactions, handlers, queries and authentication conditions.
It also contains helpers to work with errors, context and abci.

Look into this package to get a brief overview of the design decisions
made around interfaces and extension building blocks. The actual business
logic lives in the extensions under x/, most notably x/timelock, which
holds carbon credit tokens in custody until their scheduled unlock time.

*/
package vault
