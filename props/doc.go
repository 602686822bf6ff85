/*Package props estimates physical properties of a composition from elemental
data: compound and Mulliken electronegativities, a Harrison band-gap estimate,
valence electron counts and a metallicity score. These are the downstream
heuristics applied to compositions that survive the screen filters.*/
package props
