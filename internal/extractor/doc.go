// Package extractor locates the declared project version in a Gradle build
// script.
//
// The search is a single, non-anchored regular expression scan over the whole
// file: a keyword, an opening brace, and a "version <literal>" line inside the
// block. The first match wins and later declarations are ignored. The captured
// literal is then stripped of one character on each end, which for a well
// formed script removes the wrapping quotes.
//
// The file is never parsed as a Groovy grammar. Blocks that do not match the
// expected shape are reported as PatternNotFoundError rather than guessed at.
package extractor
