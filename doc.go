// Package troop reconciles cookie-sale activity reported by two independent
// platforms into one internally consistent ledger per scout and per troop.
//
// The retail platform (Digital Cookie, "DC") reports one row per customer order.
// The ledger platform (Smart Cookies, "SC") reports inventory movements,
// donation records and the booth and direct-ship dividers that credit
// troop-level sales to individual scouts. Neither system agrees with the other
// on vocabulary, so the package is organized as a pure pipeline:
//
//   - Classification: every raw transfer gets exactly one [TransferCategory],
//     every raw order row gets an [Owner], an [OrderType] and a [PaymentMethod].
//     Values never seen before are kept, unclassified, with a [Warning].
//   - Import: scouts are the union of both platforms' identities; orders,
//     inventory movements and [Allocation]s attach to them.
//   - Aggregation: per-scout totals (sales, shortfalls, cash owed) and troop
//     totals (net inventory, proceeds tier, channel roll-ups).
//   - Views: transfer breakdowns, variety roll-up, Cookie-Share reconciliation,
//     booth roll-up and a health check.
//
// [Build] composes all of the above into one [Dataset]. It performs no I/O and
// is deterministic: the same [ImportState] always yields the same Dataset.
package troop
