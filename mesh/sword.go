package mesh

// SwordVertexCount is the number of authored sword vertices.
const SwordVertexCount = 33

// Sword returns the sword as a triangle list in the z=0 plane, tip up along +Y.
// Some triangles repeat vertices of their neighbours; the list is kept as authored.
func Sword() []Vertex {
	v := make([]Vertex, SwordVertexCount)

	// blade, lower right half
	v[0] = V(0.5, 4.5, 0, Pink)
	v[1] = V(-0.5, 0, 0, Black)
	v[2] = V(0.5, 0, 0, FloralWhite)

	// cross-guard
	v[3] = V(0, 0, 0, Gold)
	v[4] = V(0, -1, 0, Silver)
	v[5] = V(-2, -1, 0, Gold)

	v[6] = v[3]
	v[7] = v[4]
	v[8] = V(2, -1, 0, Silver)

	v[9] = V(0, 0, 0, Gold)
	v[10] = V(-2, 0, 0, Gold)
	v[11] = V(-2, -1, 0, Gold)

	v[12] = V(0, 0, 0, Gold)
	v[13] = V(2, 0, 0, Gold)
	v[14] = V(2, -1, 0, Silver)

	// grip
	v[15] = V(0.5, -1, 0, Black)
	v[16] = V(-0.5, -1, 0, Black)
	v[17] = V(-0.15, -2.5, 0, SaddleBrown)

	v[18] = v[15]
	v[19] = V(0.15, -2.5, 0, Black)
	v[20] = v[17]

	// pommel
	v[21] = V(0.23, -2.5, 0, Black)
	v[22] = V(-0.23, -2.5, 0, Silver)
	v[23] = V(0.23, -2.8, 0, Silver)

	v[24] = V(-0.23, -2.5, 0, Silver)
	v[25] = V(-0.23, -2.8, 0, Black)
	v[26] = V(0.23, -2.8, 0, Silver)

	// blade, upper left half
	v[27] = V(-0.5, 4.5, 0, Pink)
	v[28] = V(-0.5, 0, 0, Black)
	v[29] = V(0.5, 4.5, 0, FloralWhite)

	// tip
	v[30] = V(-0.5, 4.5, 0, Pink)
	v[31] = V(0, 7, 0, Silver)
	v[32] = V(0.5, 4.5, 0, FloralWhite)

	return v
}
