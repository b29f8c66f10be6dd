package dto

import "github.com/lib/pq"

func pqStringArray(in []string) pq.StringArray {
	if in == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(in)
}
