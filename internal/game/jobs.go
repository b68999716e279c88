package game

import "fmt"

type Job int

const (
	JobOther Job = iota
	JobGuard
	JobTamer

	jobCount
)

var jobNames = [jobCount]string{
	JobOther: "Other",
	JobGuard: "Guard",
	JobTamer: "Tamer",
}

func (j Job) String() string {
	if j < 0 || j >= jobCount {
		return fmt.Sprintf("Job(%d)", int(j))
	}
	return jobNames[j]
}

func AllJobs() []Job {
	out := make([]Job, 0, jobCount)
	for j := Job(0); j < jobCount; j++ {
		out = append(out, j)
	}
	return out
}

var jobModifiers = [jobCount]StatModifier{
	JobOther: {},
	JobGuard: {Survival: 0.04, Defense: 30},
	JobTamer: {},
}

// JobModifier returns the job's bonus. The Guard values are placeholders
// until the real job table is known.
func JobModifier(j Job) StatModifier {
	if j < 0 || j >= jobCount {
		return StatModifier{}
	}
	return jobModifiers[j]
}
