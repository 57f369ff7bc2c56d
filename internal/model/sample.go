package model

// SamplePeople returns the built-in sample people. Each call returns a new slice.
func SamplePeople() []Person {
	return []Person{
		{FirstName: "hossien", LastName: "solymany", Age: 14, Email: "h@gmail.com"},
		{FirstName: "hassan", LastName: "khj", Age: 145, Email: "2aa@gmail.com"},
		{FirstName: "asas", LastName: "sowwy", Age: 55, Email: "aa@gmail.com"},
		{FirstName: "oitrq", LastName: "oooai", Age: 21, Email: "oo@gmail.com"},
		{FirstName: "212jdas2w", LastName: "ppqim", Age: 22, Email: ""},
		{FirstName: "iwopq", LastName: "uurjn", Age: 434, Email: ""},
		{FirstName: "pppaiw", LastName: "qie3uc", Age: 21, Email: "qq@gmail.com"},
	}
}

// SampleNumbers returns the built-in sample number set.
func SampleNumbers() NumberSet {
	return NumberSet{1, 2, 3, 4, 5, 6, 7, 8, 8, 9, 9, 10, 11, 12, 13, 14, 15}
}
