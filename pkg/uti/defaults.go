// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package uti

// DefaultDeclarations returns the built-in type graph
func DefaultDeclarations() []Declaration {
	return []Declaration{
		{Identifier: Item, Description: "item"},
		{Identifier: Content, ConformsTo: []UTI{Item}, Description: "content"},
		{Identifier: Data, ConformsTo: []UTI{Item}, Description: "data"},
		{Identifier: Text, ConformsTo: []UTI{Data, Content}, Description: "text"},
		{Identifier: PlainText, ConformsTo: []UTI{Text}, Extensions: []string{"txt", "text"}, Description: "plain text"},
		{Identifier: SourceCode, ConformsTo: []UTI{PlainText}, Description: "source code"},
		{Identifier: SwiftSource, ConformsTo: []UTI{SourceCode}, Extensions: []string{"swift"}, Description: "Swift source"},
		{Identifier: CSource, ConformsTo: []UTI{SourceCode}, Extensions: []string{"c"}, Description: "C source"},
		{Identifier: CHeader, ConformsTo: []UTI{SourceCode}, Extensions: []string{"h"}, Description: "C header"},
		{Identifier: ObjCSource, ConformsTo: []UTI{SourceCode}, Extensions: []string{"m"}, Description: "Objective-C source"},
		{Identifier: CPlusSource, ConformsTo: []UTI{SourceCode}, Extensions: []string{"cpp", "cc", "cxx"}, Description: "C++ source"},
		{Identifier: GoSource, ConformsTo: []UTI{SourceCode}, Extensions: []string{"go"}, Description: "Go source"},
		{Identifier: Script, ConformsTo: []UTI{SourceCode}, Description: "script"},
		{Identifier: ShellScript, ConformsTo: []UTI{Script}, Extensions: []string{"sh", "bash", "zsh"}, Description: "shell script"},
		{Identifier: PythonScript, ConformsTo: []UTI{Script}, Extensions: []string{"py"}, Description: "Python script"},
		{Identifier: RubyScript, ConformsTo: []UTI{Script}, Extensions: []string{"rb"}, Description: "Ruby script"},
		{Identifier: JSON, ConformsTo: []UTI{Text}, Extensions: []string{"json"}, Description: "JSON"},
		{Identifier: XML, ConformsTo: []UTI{Text}, Extensions: []string{"xml", "plist"}, Description: "XML"},
		{Identifier: YAML, ConformsTo: []UTI{Text}, Extensions: []string{"yaml", "yml"}, Description: "YAML"},
		{Identifier: Package, ConformsTo: []UTI{Content}, Description: "package"},
		{Identifier: Playground, ConformsTo: []UTI{Package}, Extensions: []string{"playground"}, Description: "Swift playground"},
		{Identifier: PlaygroundPage, ConformsTo: []UTI{Package}, Extensions: []string{"playgroundpage"}, Description: "Swift playground page"},
	}
}
