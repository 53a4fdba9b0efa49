package internal

// ReconstructPath rebuilds the path ending at current from the cameFrom map.
// The root of the map is the node recorded as its own predecessor. A node
// missing from the map yields an empty path.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
) []NodeType {
	if _, ok := cameFrom[current]; !ok {
		return nil
	}
	path := []NodeType{current}
	for {
		previousNode, exists := cameFrom[current]
		if !exists {
			return nil
		}
		if previousNode == current {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
