package plan

// defaultExercises is the canonical built-in exercise table. Order matters:
// query results and ranking tie-breaks follow this insertion order.
func defaultExercises() []Exercise {
	return []Exercise{
		{
			ID:                "plank",
			Name:              "Plank",
			Type:              "Isometric",
			Level:             "Beginner",
			Equipment:         []string{"Mat"},
			TargetAreas:       []string{"Core", "Shoulders"},
			Contraindications: []string{"shoulder injury", "recent abdominal surgery"},
			Reps:              "3 holds of 30-45 seconds",
			Intensity:         "RPE 6",
			Rest:              "45 seconds between holds",
			Rating:            4.7,
			Steps: []string{
				"Place forearms on the mat, elbows under shoulders.",
				"Step feet back until the body forms a straight line.",
				"Brace the trunk and breathe steadily for the full hold.",
			},
			SafetyNote: "Stop if the lower back sags or starts to ache.",
		},
		{
			ID:                "dead-bug",
			Name:              "Dead Bug",
			Type:              "Stability",
			Level:             "Beginner",
			Equipment:         []string{"Mat"},
			TargetAreas:       []string{"Core"},
			Contraindications: []string{"recent abdominal surgery"},
			Reps:              "3 sets of 8 per side",
			Intensity:         "RPE 5",
			Rest:              "60 seconds between sets",
			Rating:            4.5,
			Steps: []string{
				"Lie on your back with arms up and knees bent to 90 degrees.",
				"Lower the opposite arm and leg toward the floor.",
				"Return under control and switch sides.",
			},
			SafetyNote: "Keep the lower back pressed gently into the mat throughout.",
		},
		{
			ID:                "sit-up",
			Name:              "Sit-Up",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Mat"},
			TargetAreas:       []string{"Core"},
			Contraindications: []string{"acute lower back pain", "back pain", "herniated disc"},
			Reps:              "3 sets of 12",
			Intensity:         "RPE 6",
			Rest:              "60 seconds between sets",
			Rating:            3.9,
			Steps: []string{
				"Lie on your back with knees bent and feet flat.",
				"Curl the torso up toward the knees.",
				"Lower back down with control.",
			},
			SafetyNote: "Avoid pulling on the neck; movement comes from the trunk.",
		},
		{
			ID:                "russian-twist",
			Name:              "Russian Twist",
			Type:              "Strength",
			Level:             "Intermediate",
			Equipment:         []string{"Mat"},
			TargetAreas:       []string{"Core"},
			Contraindications: []string{"lower back pain", "herniated disc"},
			Reps:              "3 sets of 10 per side",
			Intensity:         "RPE 6",
			Rest:              "60 seconds between sets",
			Rating:            4.0,
			Steps: []string{
				"Sit with knees bent and heels lightly touching the floor.",
				"Lean back slightly and rotate the torso side to side.",
			},
			SafetyNote: "Rotate from the ribcage, not by yanking the arms across.",
		},
		{
			ID:                "side-plank",
			Name:              "Side Plank",
			Type:              "Isometric",
			Level:             "Intermediate",
			Equipment:         []string{"Mat"},
			TargetAreas:       []string{"Core"},
			Contraindications: []string{"shoulder injury"},
			Reps:              "2 holds of 20-30 seconds per side",
			Intensity:         "RPE 6",
			Rest:              "45 seconds between holds",
			Rating:            4.3,
			Steps: []string{
				"Lie on one side with the elbow under the shoulder.",
				"Lift the hips until the body forms a straight line.",
				"Hold, then switch sides.",
			},
			SafetyNote: "Come down immediately if the supporting shoulder hurts.",
		},
		{
			ID:                "bodyweight-squat",
			Name:              "Bodyweight Squat",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Bodyweight"},
			TargetAreas:       []string{"Legs", "Glutes"},
			Contraindications: []string{"acute knee injury"},
			Reps:              "3 sets of 12",
			Intensity:         "RPE 6",
			Rest:              "60 seconds between sets",
			Rating:            4.8,
			Steps: []string{
				"Stand with feet shoulder-width apart.",
				"Sit the hips back and down until thighs are near parallel.",
				"Drive through the heels to stand back up.",
			},
			SafetyNote: "Keep the knees tracking over the toes.",
		},
		{
			ID:                "walking-lunge",
			Name:              "Walking Lunge",
			Type:              "Strength",
			Level:             "Intermediate",
			Equipment:         []string{"Open Space"},
			TargetAreas:       []string{"Legs", "Glutes"},
			Contraindications: []string{"knee pain", "balance disorder"},
			Reps:              "3 sets of 10 per leg",
			Intensity:         "RPE 7",
			Rest:              "90 seconds between sets",
			Rating:            4.4,
			Steps: []string{
				"Step forward into a lunge, rear knee toward the floor.",
				"Push off the front foot and step through to the next lunge.",
			},
			SafetyNote: "Shorten the stride if the front knee drifts past the toes.",
		},
		{
			ID:                "glute-bridge",
			Name:              "Glute Bridge",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Mat"},
			TargetAreas:       []string{"Glutes", "Core"},
			Contraindications: []string{},
			Reps:              "3 sets of 12",
			Intensity:         "RPE 5",
			Rest:              "60 seconds between sets",
			Rating:            4.6,
			Steps: []string{
				"Lie on your back with knees bent and feet flat.",
				"Squeeze the glutes and lift the hips until the body is straight from knees to shoulders.",
				"Lower slowly.",
			},
			SafetyNote: "Lift only as high as the hips go without arching the lower back.",
		},
		{
			ID:                "goblet-squat",
			Name:              "Goblet Squat",
			Type:              "Strength",
			Level:             "Intermediate",
			Equipment:         []string{"Dumbbell"},
			TargetAreas:       []string{"Legs", "Glutes", "Core"},
			Contraindications: []string{"acute knee injury", "lower back pain"},
			Reps:              "3 sets of 10",
			Intensity:         "RPE 7",
			Rest:              "90 seconds between sets",
			Rating:            4.6,
			Steps: []string{
				"Hold a dumbbell vertically against the chest.",
				"Squat down keeping the chest tall.",
				"Stand back up through the heels.",
			},
			SafetyNote: "Choose a weight you can hold without rounding the upper back.",
		},
		{
			ID:                "romanian-deadlift",
			Name:              "Romanian Deadlift",
			Type:              "Strength",
			Level:             "Intermediate",
			Equipment:         []string{"Barbell"},
			TargetAreas:       []string{"Legs", "Glutes", "Back"},
			Contraindications: []string{"lower back pain", "herniated disc"},
			Reps:              "3 sets of 8",
			Intensity:         "RPE 7",
			Rest:              "2 minutes between sets",
			Rating:            4.5,
			Steps: []string{
				"Hold the bar at hip height with a shoulder-width grip.",
				"Hinge at the hips, sliding the bar down the thighs.",
				"Drive the hips forward to return to standing.",
			},
			SafetyNote: "Stop the descent the moment the lower back starts to round.",
		},
		{
			ID:                "leg-press",
			Name:              "Leg Press",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Leg Press Machine"},
			TargetAreas:       []string{"Legs", "Glutes"},
			Contraindications: []string{"acute knee injury"},
			Reps:              "3 sets of 10",
			Intensity:         "RPE 7",
			Rest:              "90 seconds between sets",
			Rating:            4.2,
			Steps: []string{
				"Sit in the machine with feet shoulder-width on the platform.",
				"Lower the platform until knees reach 90 degrees.",
				"Press back up without locking the knees.",
			},
			SafetyNote: "Never let the lower back lift off the seat pad.",
		},
		{
			ID:                "push-up",
			Name:              "Push-Up",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Bodyweight"},
			TargetAreas:       []string{"Chest", "Shoulders", "Arms"},
			Contraindications: []string{"wrist injury", "shoulder injury"},
			Reps:              "3 sets of 10",
			Intensity:         "RPE 6",
			Rest:              "60 seconds between sets",
			Rating:            4.7,
			Steps: []string{
				"Start in a high plank with hands under shoulders.",
				"Lower the chest toward the floor, elbows at about 45 degrees.",
				"Press back up to full arm extension.",
			},
			SafetyNote: "Drop to the knees if form breaks before the set ends.",
		},
		{
			ID:                "barbell-bench-press",
			Name:              "Barbell Bench Press",
			Type:              "Strength",
			Level:             "Intermediate",
			Equipment:         []string{"Barbell", "Bench"},
			TargetAreas:       []string{"Chest", "Arms"},
			Contraindications: []string{"shoulder injury", "recent surgery"},
			Reps:              "3 sets of 8",
			Intensity:         "RPE 7",
			Rest:              "2 minutes between sets",
			Rating:            4.6,
			Steps: []string{
				"Lie on the bench with eyes under the bar.",
				"Lower the bar to mid-chest with control.",
				"Press back up to lockout.",
			},
			SafetyNote: "Use a spotter or safety pins for working sets.",
		},
		{
			ID:                "dumbbell-row",
			Name:              "One-Arm Dumbbell Row",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Dumbbell", "Bench"},
			TargetAreas:       []string{"Back", "Arms"},
			Contraindications: []string{"lower back pain"},
			Reps:              "3 sets of 10 per arm",
			Intensity:         "RPE 7",
			Rest:              "90 seconds between sets",
			Rating:            4.5,
			Steps: []string{
				"Support one hand and knee on the bench, back flat.",
				"Row the dumbbell to the hip, elbow close to the body.",
				"Lower slowly and repeat, then switch arms.",
			},
			SafetyNote: "Keep the spine neutral; do not twist to lift the weight.",
		},
		{
			ID:                "lat-pulldown",
			Name:              "Lat Pulldown",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Cable Machine"},
			TargetAreas:       []string{"Back", "Arms"},
			Contraindications: []string{"shoulder impingement"},
			Reps:              "3 sets of 10",
			Intensity:         "RPE 6",
			Rest:              "90 seconds between sets",
			Rating:            4.4,
			Steps: []string{
				"Grip the bar slightly wider than shoulder width.",
				"Pull the bar to the upper chest, squeezing the shoulder blades.",
				"Return under control to full stretch.",
			},
			SafetyNote: "Pull to the front of the chest, never behind the neck.",
		},
		{
			ID:                "band-pull-apart",
			Name:              "Band Pull-Apart",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Resistance Band"},
			TargetAreas:       []string{"Back", "Shoulders"},
			Contraindications: []string{},
			Reps:              "3 sets of 15",
			Intensity:         "RPE 5",
			Rest:              "45 seconds between sets",
			Rating:            4.3,
			Steps: []string{
				"Hold the band at shoulder height with straight arms.",
				"Pull the hands apart until the band touches the chest.",
				"Return slowly to the start.",
			},
			SafetyNote: "Keep the shoulders down away from the ears.",
		},
		{
			ID:                "superman-hold",
			Name:              "Superman Hold",
			Type:              "Isometric",
			Level:             "Beginner",
			Equipment:         []string{"Mat"},
			TargetAreas:       []string{"Back", "Glutes"},
			Contraindications: []string{"acute lower back pain", "spinal stenosis"},
			Reps:              "3 holds of 20 seconds",
			Intensity:         "RPE 5",
			Rest:              "45 seconds between holds",
			Rating:            4.0,
			Steps: []string{
				"Lie face down with arms extended overhead.",
				"Lift arms, chest, and legs a few centimeters off the mat.",
				"Hold, then lower with control.",
			},
			SafetyNote: "Lift low and long; height is not the goal.",
		},
		{
			ID:                "overhead-press",
			Name:              "Dumbbell Overhead Press",
			Type:              "Strength",
			Level:             "Intermediate",
			Equipment:         []string{"Dumbbell"},
			TargetAreas:       []string{"Shoulders", "Arms"},
			Contraindications: []string{"shoulder impingement", "uncontrolled hypertension"},
			Reps:              "3 sets of 8",
			Intensity:         "RPE 7",
			Rest:              "90 seconds between sets",
			Rating:            4.4,
			Steps: []string{
				"Hold dumbbells at shoulder height, palms forward.",
				"Press overhead until arms are straight.",
				"Lower with control to the shoulders.",
			},
			SafetyNote: "Keep the ribs down; do not arch the lower back to finish the press.",
		},
		{
			ID:                "lateral-raise",
			Name:              "Lateral Raise",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Dumbbell"},
			TargetAreas:       []string{"Shoulders"},
			Contraindications: []string{"shoulder impingement"},
			Reps:              "3 sets of 12",
			Intensity:         "RPE 6",
			Rest:              "60 seconds between sets",
			Rating:            4.1,
			Steps: []string{
				"Stand tall with a dumbbell in each hand.",
				"Raise the arms out to the sides to shoulder height.",
				"Lower slowly.",
			},
			SafetyNote: "Use light weight; momentum defeats the purpose.",
		},
		{
			ID:                "bicep-curl",
			Name:              "Dumbbell Bicep Curl",
			Type:              "Strength",
			Level:             "Beginner",
			Equipment:         []string{"Dumbbell"},
			TargetAreas:       []string{"Arms"},
			Contraindications: []string{"elbow tendonitis"},
			Reps:              "3 sets of 12",
			Intensity:         "RPE 6",
			Rest:              "60 seconds between sets",
			Rating:            4.2,
			Steps: []string{
				"Stand with dumbbells at your sides, palms forward.",
				"Curl the weights to shoulder height without swinging.",
				"Lower under control.",
			},
			SafetyNote: "Keep the elbows pinned to the sides.",
		},
		{
			ID:                "tricep-dip",
			Name:              "Bench Tricep Dip",
			Type:              "Strength",
			Level:             "Intermediate",
			Equipment:         []string{"Chair"},
			TargetAreas:       []string{"Arms", "Chest"},
			Contraindications: []string{"shoulder injury", "wrist injury"},
			Reps:              "3 sets of 10",
			Intensity:         "RPE 6",
			Rest:              "60 seconds between sets",
			Rating:            4.0,
			Steps: []string{
				"Sit on the edge of a sturdy chair, hands beside the hips.",
				"Slide forward and lower the hips by bending the elbows.",
				"Press back up to straight arms.",
			},
			SafetyNote: "Keep the hips close to the chair to protect the shoulders.",
		},
		{
			ID:                "brisk-walk",
			Name:              "Brisk Walk",
			Type:              "Cardio",
			Level:             "Beginner",
			Equipment:         []string{"Open Space"},
			TargetAreas:       []string{"Cardio", "Legs"},
			Contraindications: []string{},
			Reps:              "15-20 minutes continuous",
			Intensity:         "RPE 4",
			Rest:              "None",
			Rating:            4.5,
			Steps: []string{
				"Walk at a pace where talking is possible but singing is not.",
				"Swing the arms naturally and keep the posture tall.",
			},
			SafetyNote: "Slow down if breathing becomes labored.",
		},
		{
			ID:                "jumping-jacks",
			Name:              "Jumping Jacks",
			Type:              "Cardio",
			Level:             "Beginner",
			Equipment:         []string{"Bodyweight"},
			TargetAreas:       []string{"Cardio", "Full Body"},
			Contraindications: []string{"knee pain", "hip pain", "stress fracture"},
			Reps:              "3 rounds of 45 seconds",
			Intensity:         "RPE 6",
			Rest:              "30 seconds between rounds",
			Rating:            4.1,
			Steps: []string{
				"Jump the feet out while raising the arms overhead.",
				"Jump back to the start and repeat rhythmically.",
			},
			SafetyNote: "Land softly with slightly bent knees.",
		},
		{
			ID:                "stationary-bike",
			Name:              "Stationary Bike",
			Type:              "Cardio",
			Level:             "Beginner",
			Equipment:         []string{"Exercise Bike"},
			TargetAreas:       []string{"Cardio", "Legs"},
			Contraindications: []string{},
			Reps:              "15 minutes steady pace",
			Intensity:         "RPE 5",
			Rest:              "None",
			Rating:            4.4,
			Steps: []string{
				"Set the saddle so the knee stays slightly bent at the bottom.",
				"Pedal at a steady conversational pace.",
			},
			SafetyNote: "Keep resistance light for the first few minutes.",
		},
		{
			ID:                "kettlebell-swing",
			Name:              "Kettlebell Swing",
			Type:              "Power",
			Level:             "Advanced",
			Equipment:         []string{"Kettlebell"},
			TargetAreas:       []string{"Glutes", "Back", "Cardio"},
			Contraindications: []string{"lower back pain", "heart condition"},
			Reps:              "4 sets of 15",
			Intensity:         "RPE 8",
			Rest:              "90 seconds between sets",
			Rating:            4.3,
			Steps: []string{
				"Hinge at the hips and hike the kettlebell back between the legs.",
				"Snap the hips forward to swing the bell to chest height.",
				"Let it fall back into the next hinge.",
			},
			SafetyNote: "The swing is a hip hinge, not a squat or an arm lift.",
		},
	}
}
