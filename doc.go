// Package finplan provides the calculation core of a personal retirement
// planning dashboard. It is designed to be local-first and fully
// deterministic: every function is a pure, synchronous transform over plain
// records, with the current date always passed in explicitly.
//
// The core functionalities include:
//   - Corpus Projection: compound-growth projection of current savings plus
//     monthly SIP contributions to a target retirement age, with a
//     health-cost-adjusted variant.
//   - Calendar Derivation: mapping a date against commitment schedules and
//     execution entries into a small set of calendar states (due,
//     approaching, executed, missed).
//   - Sprint Tracking: a time-boxed commitment lifecycle (monthly, quarterly
//     or annual) with at most one active sprint, discipline KPIs, and an
//     immutable completion history.
//   - Phase Detection: four ordered planning phases (foundation,
//     accumulation, optimization, resilience) scored against milestone
//     readings, unlocking strictly in order.
//   - Journal Signals: qualitative risk and health signals plus monthly
//     rollups derived from a weekly journal.
//   - Data Persistence: encoding and decoding plan records to and from
//     human-readable, version-controllable formats (JSONL), behind a small
//     store interface so the core never touches storage directly.
//
// This package serves as the foundational logic for the `fpc` command-line
// tool.
package finplan
