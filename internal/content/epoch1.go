package content

import "github.com/p-n-ai/pai-curriculum/internal/curriculum"

func epoch1() curriculum.EpochDefinition {
	return curriculum.EpochDefinition{
		ID:                  "epoch-1",
		Title:               "Java Fundamentals",
		Description:         "Variables, types, operators and control flow.",
		ExpectedLessonCount: 3,
		Lessons: []curriculum.LessonFunc{
			epoch1Lesson1,
			epoch1Lesson2,
			epoch1Lesson3,
		},
	}
}

func epoch1Lesson1() (curriculum.Lesson, error) {
	c, err := mc("epoch-1-lesson-1-challenge-1", "Picking a type",
		"Which primitive type should hold a price like 19.99?", "D",
		"A) int",
		"B) char",
		"C) boolean",
		"D) double",
	)
	if err != nil {
		return curriculum.Lesson{}, err
	}

	return curriculum.NewLessonBuilder("epoch-1-lesson-1", "Variables and Primitive Types").
		EstimatedMinutes(25).
		AddTheory("Declaring a variable",
			"A declaration gives a variable a type and a name: int age = 30; The type decides what values it may hold.").
		AddAnalogy("Labelled boxes",
			"A variable is a labelled box sized for one kind of thing. You can swap the contents but not the shape of the box.").
		AddTheory("The eight primitives",
			"byte, short, int, long, float, double, char and boolean. Everything else in Java is an object.").
		AddKeyPoint("Defaults",
			"Use int for whole numbers and double for decimals unless you have a reason not to.").
		AddChallenge(c).
		AddQuizQuestion(quiz("How many bits does a Java int use?", "B",
			"int is a signed 32-bit two's complement integer on every platform.",
			"A", "16", "B", "32", "C", "64")).
		Build()
}

func epoch1Lesson2() (curriculum.Lesson, error) {
	c, err := mc("epoch-1-lesson-2-challenge-1", "Integer division",
		"What does 7 / 2 evaluate to in Java when both operands are int?", "A",
		"A) 3",
		"B) 3.5",
		"C) 4",
	)
	if err != nil {
		return curriculum.Lesson{}, err
	}

	return curriculum.NewLessonBuilder("epoch-1-lesson-2", "Operators and Expressions").
		EstimatedMinutes(20).
		AddTheory("Arithmetic",
			"+, -, *, / and % work on numbers. Division between two ints discards the remainder.").
		AddExample("Remainder",
			"int minutes = 135;\nint hours = minutes / 60;   // 2\nint rest = minutes % 60;    // 15").
		AddWarning("== on objects",
			"For strings and other objects, == compares references. Use equals() to compare contents.").
		AddChallenge(c).
		Build()
}

func epoch1Lesson3() (curriculum.Lesson, error) {
	loop, err := mc("epoch-1-lesson-3-challenge-1", "At least once",
		"Which loop always executes its body at least once?", "C",
		"A) for",
		"B) while",
		"C) do-while",
	)
	if err != nil {
		return curriculum.Lesson{}, err
	}
	branch, err := mc("epoch-1-lesson-3-challenge-2", "Falling through",
		"In a classic switch statement, what happens if a case has no break?", "B",
		"A) A compile error",
		"B) Execution continues into the next case",
		"C) The switch restarts",
	)
	if err != nil {
		return curriculum.Lesson{}, err
	}

	return curriculum.NewLessonBuilder("epoch-1-lesson-3", "Control Flow").
		EstimatedMinutes(30).
		AddTheory("Branching",
			"if, else if and else pick one path based on boolean conditions. switch selects among constant cases.").
		AddTheory("Looping",
			"for repeats a known number of times, while repeats while a condition holds, do-while checks after the body.").
		AddExample("Counting down",
			"for (int i = 3; i > 0; i--) {\n    System.out.println(i);\n}").
		AddKeyPoint("Prefer the clearest loop",
			"Choose the loop whose shape matches the problem; readers should not have to simulate it.").
		AddChallenge(loop).
		AddChallenge(branch).
		AddQuizQuestion(quiz("Which keyword skips to the next loop iteration?", "A",
			"continue ends the current iteration; break leaves the loop entirely.",
			"A", "continue", "B", "break", "C", "return")).
		Build()
}
