package content

import "github.com/p-n-ai/pai-curriculum/internal/curriculum"

func epoch0() curriculum.EpochDefinition {
	return curriculum.EpochDefinition{
		ID:                  "epoch-0",
		Title:               "Orientation",
		Description:         "How programs run, what the JDK gives you, and your first Java program.",
		ExpectedLessonCount: 3,
		Lessons: []curriculum.LessonFunc{
			epoch0Lesson1,
			epoch0Lesson2,
			epoch0Lesson3,
		},
	}
}

func epoch0Lesson1() (curriculum.Lesson, error) {
	c, err := mc("epoch-0-lesson-1-challenge-1", "Who runs the bytecode?",
		"After javac compiles Hello.java, which component executes the result?", "B",
		"A) The operating system directly",
		"B) The Java Virtual Machine",
		"C) The text editor",
		"D) javac itself",
	)
	if err != nil {
		return curriculum.Lesson{}, err
	}

	return curriculum.NewLessonBuilder("epoch-0-lesson-1", "What Is a Program?").
		EstimatedMinutes(12).
		AddTheory("Instructions for a machine",
			"A program is a precise list of instructions. The computer follows them literally, in order, without guessing what you meant.").
		AddAnalogy("A recipe",
			"A recipe lists ingredients and steps. A program lists data and operations. Skip a step in either and the result is wrong.").
		AddTheory("Source, bytecode, execution",
			"You write .java source files. The javac compiler turns them into .class bytecode. The JVM loads and runs that bytecode on any platform.").
		AddKeyPoint("Write once, run anywhere",
			"Bytecode is platform independent; only the JVM is platform specific.").
		AddChallenge(c).
		AddQuizQuestion(quiz("What file extension does compiled Java bytecode use?", "C",
			"javac writes one .class file per top-level class.",
			"A", ".java", "B", ".exe", "C", ".class", "D", ".jar")).
		Build()
}

func epoch0Lesson2() (curriculum.Lesson, error) {
	return curriculum.NewLessonBuilder("epoch-0-lesson-2", "Installing the JDK").
		EstimatedMinutes(15).
		AddTheory("JDK versus JRE",
			"The JDK contains the compiler and tools needed to build programs. The runtime alone can only run them.").
		AddExample("Checking your install",
			"java -version\njavac -version\n\nBoth commands should print the same major version.").
		AddWarning("PATH problems",
			"If javac is not found, the JDK bin directory is missing from PATH. Fix PATH before continuing.").
		AddQuizQuestion(quiz("Which tool turns .java files into bytecode?", "A",
			"javac is the Java compiler shipped with the JDK.",
			"A", "javac", "B", "java", "C", "jar")).
		Build()
}

func epoch0Lesson3() (curriculum.Lesson, error) {
	c, err := mc("epoch-0-lesson-3-challenge-1", "The entry point",
		"Which method signature does the JVM look for when starting a program?", "A",
		"A) public static void main(String[] args)",
		"B) public void start()",
		"C) static int run(String args)",
	)
	if err != nil {
		return curriculum.Lesson{}, err
	}

	return curriculum.NewLessonBuilder("epoch-0-lesson-3", "Hello, World").
		EstimatedMinutes(20).
		AddExample("Hello.java",
			"public class Hello {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World\");\n    }\n}").
		AddTheory("Anatomy",
			"The class name must match the file name. main is the entry point. System.out.println writes a line to standard output.").
		AddWarning("Case matters",
			"Java is case sensitive: Main, main and MAIN are three different names.").
		AddChallenge(c).
		Build()
}
