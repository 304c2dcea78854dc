package content

import "github.com/p-n-ai/pai-curriculum/internal/curriculum"

func epoch2() curriculum.EpochDefinition {
	return curriculum.EpochDefinition{
		ID:                  "epoch-2",
		Title:               "Objects and Classes",
		Description:         "Modelling with classes, constructors and encapsulation.",
		ExpectedLessonCount: 4,
		Lessons: []curriculum.LessonFunc{
			epoch2Lesson1,
			epoch2Lesson2,
		},
	}
}

func epoch2Lesson1() (curriculum.Lesson, error) {
	c, err := mc("epoch-2-lesson-1-challenge-1", "Creating objects",
		"Which keyword creates a new instance of a class?", "C",
		"A) class",
		"B) this",
		"C) new",
		"D) static",
	)
	if err != nil {
		return curriculum.Lesson{}, err
	}

	return curriculum.NewLessonBuilder("epoch-2-lesson-1", "Classes and Objects").
		EstimatedMinutes(30).
		AddTheory("Blueprints",
			"A class declares fields (state) and methods (behaviour). Objects are instances created from it.").
		AddAnalogy("Cookie cutter",
			"The class is the cutter, each object a cookie. Same shape, independent dough.").
		AddExample("A small class",
			"public class Point {\n    int x;\n    int y;\n}\n\nPoint p = new Point();\np.x = 4;").
		AddChallenge(c).
		AddQuizQuestion(quiz("What is the value of an unassigned object field of type int?", "A",
			"Fields get default values; local variables do not.",
			"A", "0", "B", "null", "C", "undefined")).
		Build()
}

func epoch2Lesson2() (curriculum.Lesson, error) {
	return curriculum.NewLessonBuilder("epoch-2-lesson-2", "Constructors and Encapsulation").
		EstimatedMinutes(35).
		AddTheory("Constructors",
			"A constructor has the class name and no return type. It runs once when the object is created.").
		AddTheory("Private fields",
			"Mark fields private and expose methods. Callers depend on behaviour, not on representation.").
		AddWarning("Default constructor",
			"Declaring any constructor removes the implicit no-argument one.").
		AddKeyPoint("Invariants live in the class",
			"If a field must never be negative, the class enforces it in its constructor and setters.").
		AddQuizQuestion(quiz("Which access modifier hides a field from every other class?", "B",
			"private members are visible only inside their own class.",
			"A", "public", "B", "private", "C", "protected")).
		Build()
}
