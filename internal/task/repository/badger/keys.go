package badger

import (
	"fmt"
	"strconv"
	"strings"
)

// Key layout:
//
//	task/<id>                    -> taskDocument JSON
//	series/<root>/<index:%010d>  -> instance id
//	assignee/<task>/<user>       -> empty
const (
	prefixTask     = "task/"
	prefixSeries   = "series/"
	prefixAssignee = "assignee/"
)

func taskKey(id string) []byte {
	return []byte(prefixTask + id)
}

func seriesPrefix(rootID string) []byte {
	return []byte(prefixSeries + rootID + "/")
}

func seriesKey(rootID string, index int) []byte {
	return []byte(fmt.Sprintf("%s%s/%010d", prefixSeries, rootID, index))
}

func assigneePrefix(taskID string) []byte {
	return []byte(prefixAssignee + taskID + "/")
}

func assigneeKey(taskID, userID string) []byte {
	return []byte(prefixAssignee + taskID + "/" + userID)
}

// parseSeriesIndex extracts the index from a series key.
func parseSeriesIndex(key []byte) (int, error) {
	s := string(key)
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return 0, fmt.Errorf("malformed series key %q", s)
	}
	return strconv.Atoi(s[i+1:])
}
