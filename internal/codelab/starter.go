package codelab

// Supported playground languages, in display order.
var Languages = []string{"Python", "JavaScript", "Java", "C++", "C#"}

var starterCode = map[string]string{
	"Python":     "def solve():\n    # Write your code here\n    print(\"Hello World\")\n\nsolve()",
	"JavaScript": "function solve() {\n    // Write your code here\n    console.log(\"Hello World\");\n}\n\nsolve();",
	"Java":       "public class Main {\n    public static void main(String[] args) {\n        // Write your code here\n        System.out.println(\"Hello World\");\n    }\n}",
	"C++":        "#include <iostream>\n\nint main() {\n    // Write your code here\n    std::cout << \"Hello World\" << std::endl;\n    return 0;\n}",
	"C#":         "using System;\n\npublic class Program {\n    public static void Main() {\n        Console.WriteLine(\"Hello World\");\n    }\n}",
}

// StarterCode returns the scaffold for a language, empty for unknown
// languages.
func StarterCode(language string) string {
	return starterCode[language]
}
