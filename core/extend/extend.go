// core/extend/extend.go
package extend

// Left counts how many characters agree walking backwards from the base just
// before a seed starting at qPos in query and dbPos in db. The start of
// either sequence ends the walk exactly like a mismatch does.
func Left(query, db string, qPos, dbPos int) int {
	n := 0
	for q, d := qPos-1, dbPos-1; q >= 0 && d >= 0; q, d = q-1, d-1 {
		if q >= len(query) || d >= len(db) || query[q] != db[d] {
			break
		}
		n++
	}
	return n
}

// Right counts how many characters agree walking forwards from the base just
// after a k-length seed starting at qPos in query and dbPos in db. The end of
// either sequence ends the walk.
func Right(query, db string, qPos, dbPos, k int) int {
	n := 0
	for q, d := qPos+k, dbPos+k; q < len(query) && d < len(db); q, d = q+1, d+1 {
		if q < 0 || d < 0 || query[q] != db[d] {
			break
		}
		n++
	}
	return n
}
