package planner

import "math"

// TotalVotes sums the vote counts across a poll's options. The poll's
// displayed total is always this sum; votes are never stored elsewhere.
func TotalVotes(poll Poll) int {
	total := 0
	for _, option := range poll.Options {
		total += option.Votes
	}
	return total
}

// OptionPercentage is an option's share of the poll's total votes, rounded
// to the nearest integer and defined as 0 when no votes were cast.
func OptionPercentage(votes, totalVotes int) int {
	if totalVotes <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(votes) / float64(totalVotes)))
}

// OptionPercentages tallies every option of a poll. With at least one vote
// the values sum to 100 up to a rounding slack of at most optionCount-1.
func OptionPercentages(poll Poll) []int {
	total := TotalVotes(poll)
	percentages := make([]int, len(poll.Options))
	for i, option := range poll.Options {
		percentages[i] = OptionPercentage(option.Votes, total)
	}
	return percentages
}
