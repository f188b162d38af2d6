package workout

// prescription holds the sets, rep range, and rest assigned to an exercise.
type prescription struct {
	Sets        int
	Reps        string
	RestSeconds int
}

// prescriptionTable maps experience level to the compound and isolation
// prescriptions. There is no randomness and no history awareness; progressive
// overload is handled elsewhere.
var prescriptionTable = map[ExperienceLevel]struct {
	compound  prescription
	isolation prescription
}{
	ExperienceBeginner: {
		compound:  prescription{Sets: 3, Reps: "10-12", RestSeconds: 90},
		isolation: prescription{Sets: 2, Reps: "10-12", RestSeconds: 60},
	},
	ExperienceIntermediate: {
		compound:  prescription{Sets: 4, Reps: "8-10", RestSeconds: 90},
		isolation: prescription{Sets: 3, Reps: "8-10", RestSeconds: 75},
	},
	ExperienceAdvanced: {
		compound:  prescription{Sets: 4, Reps: "6-10", RestSeconds: 120},
		isolation: prescription{Sets: 4, Reps: "6-10", RestSeconds: 90},
	},
}

// defaultPrescription is the row used for unrecognized experience levels.
var defaultPrescription = prescription{Sets: 3, Reps: "10-12", RestSeconds: 75}

// prescribe assigns sets, reps, and rest for an exercise based on its
// compound classification and the user's experience level.
func prescribe(isCompound bool, level ExperienceLevel) prescription {
	row, ok := prescriptionTable[level]
	if !ok {
		return defaultPrescription
	}
	if isCompound {
		return row.compound
	}
	return row.isolation
}
