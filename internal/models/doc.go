// Package models defines the core domain models for the Teh Kencana POS.
//
// # Models
//
//   - Category: a catalog group, displayed in a user-defined order
//   - Product: a sellable item belonging to exactly one category
//   - Device: a paired Bluetooth device, candidate receipt printer
//
// # Design Principles
//
//  1. **Integer row identity**: categories and products are keyed by
//     SQLite-generated integer IDs; all cross-references (cart entries,
//     product→category) use IDs, never full values.
//  2. **Explicit ordering**: display order is a persisted position column,
//     rewritten in bulk on reorder, not derived from insertion order.
//  3. **Avoid circular references**: Product holds a CategoryID, not a
//     pointer to its Category.
package models
