/*Package screen implements the composition filter: enumeration of oxidation-state
assignments for a chemical system, the charge-neutral stoichiometry solver and
the Pauling electronegativity-ordering test.

The filter is purely functional. Given the same slots and options it always
emits the same candidates in the same order: assignments are visited in
Cartesian-product order with the first slot varying slowest, and ratios within
an assignment in lexicographic order. It performs no I/O and keeps no state
apart from an optional, behaviour-neutral memoisation cache.*/
package screen
