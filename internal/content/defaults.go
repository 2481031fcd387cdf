// Package content holds the bundled learning content the portal falls back
// to whenever the store has no persisted materials or questions.
package content

import "github.com/lshigami/learnhub/internal/model"

// Subjects is the fixed set of subject labels content is grouped by.
var Subjects = []string{
	"Mathematics",
	"Physics",
	"Chemistry",
	"Biology",
	"Computer Science",
}

func strptr(s string) *string { return &s }

// DefaultMaterials returns a fresh copy of the bundled materials so callers
// can append without mutating the seed.
func DefaultMaterials() []model.Material {
	return []model.Material{
		{
			ID:    "1",
			Title: "Introduction to Machine Learning",
			Content: "Machine learning is a branch of artificial intelligence (AI) and computer science which focuses on the use of data and algorithms to imitate the way that humans learn, gradually improving its accuracy.\n\n" +
				"Machine learning algorithms build a model based on sample data, known as \"training data\", in order to make predictions or decisions without being explicitly programmed to do so.",
			ImageURL: strptr("https://images.pexels.com/photos/2599244/pexels-photo-2599244.jpeg"),
			PDFURL:   strptr("https://www.example.com/ml-intro.pdf"),
			VideoURL: strptr("https://www.youtube.com/embed/mJeNghZXtMo"),
			Subject:  "Computer Science",
		},
		{
			ID:    "2",
			Title: "Understanding Data Structures",
			Content: "Data structures are specialized formats for organizing, processing, retrieving and storing data. They provide a means to manage large amounts of data efficiently for uses such as large databases and internet indexing services.\n\n" +
				"There are several basic and advanced types of data structures, all designed to arrange data to suit a specific purpose.",
			ImageURL: strptr("https://images.pexels.com/photos/577585/pexels-photo-577585.jpeg"),
			PDFURL:   strptr("https://www.example.com/data-structures.pdf"),
			VideoURL: strptr("https://www.youtube.com/embed/bum_19loj9A"),
			Subject:  "Computer Science",
		},
		{
			ID:    "3",
			Title: "Linear Equations Refresher",
			Content: "A linear equation is an equation of the first degree, meaning it contains no variable raised to a power higher than one. " +
				"Solving one means isolating the variable through inverse operations applied to both sides.",
			Subject: "Mathematics",
		},
	}
}

// DefaultQuestions returns a fresh copy of the bundled question bank.
func DefaultQuestions() []model.Question {
	return []model.Question{
		{
			ID:            "1",
			Text:          "What is the value of x in the equation 2x + 5 = 13?",
			Options:       []string{"2", "4", "6", "8"},
			CorrectAnswer: 1,
			Explanation:   "To solve 2x + 5 = 13, subtract 5 from both sides: 2x = 8, then divide both sides by 2: x = 4",
			Subject:       "Mathematics",
		},
		{
			ID:            "2",
			Text:          "If a triangle has angles measuring 30° and 60°, what is the measure of the third angle?",
			Options:       []string{"60°", "90°", "120°", "180°"},
			CorrectAnswer: 1,
			Explanation:   "The angles in a triangle sum to 180°. If two angles are 30° and 60°, then 180° - (30° + 60°) = 90°",
			Subject:       "Mathematics",
		},
		{
			ID:            "3",
			Text:          "What is the SI unit of force?",
			Options:       []string{"Joule", "Watt", "Newton", "Pascal"},
			CorrectAnswer: 2,
			Explanation:   "Force is measured in newtons (N); one newton accelerates a one kilogram mass at one metre per second squared.",
			Subject:       "Physics",
		},
		{
			ID:            "4",
			Text:          "Which of these quantities is a vector?",
			Options:       []string{"Speed", "Mass", "Temperature", "Velocity"},
			CorrectAnswer: 3,
			Explanation:   "Velocity has both magnitude and direction, which makes it a vector. Speed, mass and temperature are scalars.",
			Subject:       "Physics",
		},
		{
			ID:            "5",
			Text:          "What is the chemical symbol for sodium?",
			Options:       []string{"So", "Na", "Sd", "N"},
			CorrectAnswer: 1,
			Explanation:   "Sodium's symbol Na comes from its Latin name, natrium.",
			Subject:       "Chemistry",
		},
		{
			ID:            "6",
			Text:          "How many protons does a carbon atom have?",
			Options:       []string{"4", "6", "8", "12"},
			CorrectAnswer: 1,
			Explanation:   "Carbon's atomic number is 6, so every carbon atom has 6 protons.",
			Subject:       "Chemistry",
		},
		{
			ID:            "7",
			Text:          "Which organelle is known as the powerhouse of the cell?",
			Options:       []string{"Nucleus", "Ribosome", "Mitochondrion", "Golgi apparatus"},
			CorrectAnswer: 2,
			Explanation:   "Mitochondria produce most of the cell's ATP through cellular respiration.",
			Subject:       "Biology",
		},
		{
			ID:            "8",
			Text:          "What molecule carries genetic information in most living organisms?",
			Options:       []string{"RNA", "DNA", "ATP", "Protein"},
			CorrectAnswer: 1,
			Explanation:   "DNA stores the genetic instructions used in growth, development and reproduction.",
			Subject:       "Biology",
		},
		{
			ID:            "9",
			Text:          "What is the time complexity of binary search on a sorted array of n elements?",
			Options:       []string{"O(n)", "O(n log n)", "O(log n)", "O(1)"},
			CorrectAnswer: 2,
			Explanation:   "Binary search halves the search interval on every comparison, giving O(log n) comparisons.",
			Subject:       "Computer Science",
		},
		{
			ID:            "10",
			Text:          "Which data structure operates on a first-in, first-out basis?",
			Options:       []string{"Stack", "Queue", "Tree", "Hash table"},
			CorrectAnswer: 1,
			Explanation:   "A queue removes elements in the order they were added; a stack is last-in, first-out.",
			Subject:       "Computer Science",
		},
	}
}

// DefaultAccessCodes is the built-in allowlist, used when ACCESS_CODES is not
// configured. Fixed at process start; never changes at runtime.
var DefaultAccessCodes = []string{
	"EDU-7K9D-2X3F", "EDU-Z4LQ-8W1N", "EDU-B8VY-0R6M", "EDU-Q2ME-4L9J",
	"EDU-X7PW-1T6A", "EDU-C5RN-9Z2Y", "EDU-K3VG-6F8B", "EDU-W9AT-7Q0E",
	"EDU-M2LC-3D5K", "EDU-R1YN-5P4X", "EDU-T0XB-9K7W", "EDU-H3QF-2V6J",
	"EDU-L8DZ-1R9M", "EDU-V6NW-0Y3L", "EDU-G5MC-8Z7P", "EDU-A2VX-6L9T",
	"EDU-Y0PR-5K1Q", "EDU-J3TL-9D2B", "EDU-N9WF-1X6A", "EDU-S7EK-4M8V",
}
